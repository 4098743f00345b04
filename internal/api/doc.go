// Package api is the HTTP surface of the service. It decodes requests,
// delegates to the catalog and the translation engine, and encodes results
// as indented JSON. Every translate failure is answered with status 400 and
// a {"message": ...} body; the message text is the only signal of its kind.
package api
