package hcl

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/tlvconfig/internal/config"
	"github.com/vk/tlvconfig/internal/ctxlog"
	"github.com/vk/tlvconfig/internal/fsutil"
	"github.com/vk/tlvconfig/internal/schema"
)

//go:embed catalog.hcl
var builtinCatalog []byte

// BuiltinCatalogName is the file name reported for the embedded catalog.
const BuiltinCatalogName = "catalog.hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths, in path order and lexical
// order within a directory, and merges their parameters into one model.
// With no paths, the embedded catalog is used.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()
	model := &config.Model{}

	if len(paths) == 0 {
		logger.Debug("No catalog paths given, using built-in catalog.")
		file, diags := parser.ParseHCL(builtinCatalog, BuiltinCatalogName)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse built-in catalog: %w", diags)
		}
		if err := l.decodeFile(ctx, file, BuiltinCatalogName, model); err != nil {
			return nil, err
		}
		return model, nil
	}

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl catalog files found in %v", paths)
	}
	logger.Debug("Discovered catalog files.", "count", len(files))

	for _, path := range files {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		if err := l.decodeFile(ctx, file, path, model); err != nil {
			return nil, err
		}
	}

	logger.Debug("Catalog loading complete.", "parameters", len(model.Parameters))
	return model, nil
}

func (l *Loader) decodeFile(ctx context.Context, file *hcl.File, name string, model *config.Model) error {
	var root schema.CatalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}
	for _, p := range root.Parameters {
		def, err := l.translateParameter(ctx, p)
		if err != nil {
			return fmt.Errorf("%s: parameter %q: %w", name, p.JSONKey, err)
		}
		model.Parameters = append(model.Parameters, def)
	}
	ctxlog.FromContext(ctx).Debug("Decoded catalog file.", "file", name, "parameters", len(root.Parameters))
	return nil
}

// findAllHCLFiles expands paths into a flat, de-duplicated list of .hcl files.
// Files inside a directory are sorted so catalog order is reproducible.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			allFiles = append(allFiles, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		for _, p := range found {
			add(p)
		}
	}
	return allFiles, nil
}
