package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// --- Catalog Structures ---

// Validation is the optional `validation` block of a parameter. Exactly one
// of its attributes is expected to be set.
type Validation struct {
	In          []string `hcl:"in,optional"`
	GreaterThan *int     `hcl:"greater_than,optional"`
}

// Parameter represents a `parameter` block. The label is the parameter's
// externally visible JSON key.
type Parameter struct {
	JSONKey      string         `hcl:"json_key,label"`
	Macro        string         `hcl:"macro"`
	ReadableName string         `hcl:"readable_name"`
	VerilogName  string         `hcl:"verilog_name"`
	Category     string         `hcl:"category"`
	Description  string         `hcl:"description,optional"`
	Type         hcl.Expression `hcl:"type"`
	Default      hcl.Expression `hcl:"default"`
	OutputMapper string         `hcl:"output_mapper,optional"`
	Validation   *Validation    `hcl:"validation,block"`
}

// CatalogFile represents the top-level structure of a catalog file.
type CatalogFile struct {
	Parameters []*Parameter `hcl:"parameter,block"`
	Body       hcl.Body     `hcl:",remain"`
}

// --- Server Configuration ---

// Server is the `server` block of an optional server configuration file.
// Every attribute is optional; unset attributes keep their flag values.
type Server struct {
	Addr             *string  `hcl:"addr,optional"`
	Catalog          *string  `hcl:"catalog,optional"`
	LogFormat        *string  `hcl:"log_format,optional"`
	LogLevel         *string  `hcl:"log_level,optional"`
	StrictValidation *bool    `hcl:"strict_validation,optional"`
	CORSOrigins      []string `hcl:"cors_origins,optional"`
	MaxBodyBytes     *int64   `hcl:"max_body_bytes,optional"`
	ShutdownTimeout  *string  `hcl:"shutdown_timeout,optional"`
}

// ServerFile represents the top-level structure of a server configuration file.
type ServerFile struct {
	Server *Server  `hcl:"server,block"`
	Body   hcl.Body `hcl:",remain"`
}
