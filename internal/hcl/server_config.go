package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/tlvconfig/internal/schema"
)

// LoadServerConfig decodes the `server` block of a server configuration file.
// A file without a server block yields an empty, non-nil configuration.
func LoadServerConfig(path string) (*schema.Server, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root schema.ServerFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	if root.Server == nil {
		return &schema.Server{}, nil
	}
	return root.Server, nil
}
