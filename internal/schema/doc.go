// Package schema holds the HCL decoding targets for catalog files and the
// server configuration file. The structs mirror the file grammar one to one
// and carry no behavior; translation into the domain model lives in the hcl
// package.
package schema
