package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

const defsKey = "$defs"

// Bundle resolves the relative "$ref"s of the schema at name into a single
// self-contained document. Each referenced file replaces its "$ref" node;
// its "$defs" are merged into the parent's and its "$id"/"$schema" dropped.
//
// Only the parent may hold external references, every schema node is an
// object, and a node with an external "$ref" has no sibling keys.
func Bundle(fsys fs.FS, name string) (map[string]any, error) {
	parent, err := readObject(fsys, name)
	if err != nil {
		return nil, err
	}

	defs := map[string]any{}
	if parentDefs, ok := parent[defsKey].(map[string]any); ok {
		for k, v := range parentDefs {
			defs[k] = v
		}
	}

	delete(parent, defsKey)

	walked, err := bundleWalk(fsys, path.Dir(name), parent, defs)
	if err != nil {
		return nil, err
	}

	out, _ := walked.(map[string]any)
	out[defsKey] = defs

	return out, nil
}

func bundleWalk(fsys fs.FS, dir string, src any, defs map[string]any) (any, error) {
	switch v := src.(type) {
	case []any:
		out := make([]any, len(v))

		for i, elem := range v {
			walked, err := bundleWalk(fsys, dir, elem, defs)
			if err != nil {
				return nil, err
			}

			out[i] = walked
		}

		return out, nil
	case map[string]any:
		if ref, ok := v["$ref"].(string); ok && strings.HasPrefix(ref, ".") {
			return bundleExternal(fsys, path.Join(dir, ref), defs)
		}

		out := make(map[string]any, len(v))

		for k, elem := range v {
			walked, err := bundleWalk(fsys, dir, elem, defs)
			if err != nil {
				return nil, err
			}

			out[k] = walked
		}

		return out, nil
	default:
		return v, nil
	}
}

func bundleExternal(fsys fs.FS, name string, defs map[string]any) (map[string]any, error) {
	child, err := readObject(fsys, name)
	if err != nil {
		return nil, err
	}

	if childDefs, ok := child[defsKey].(map[string]any); ok {
		for k, v := range childDefs {
			defs[k] = v
		}

		delete(child, defsKey)
	}

	delete(child, "$id")
	delete(child, "$schema")

	return child, nil
}

func readObject(fsys fs.FS, name string) (map[string]any, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening schema %s: %w", name, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", name, err)
	}

	if obj == nil {
		return nil, fmt.Errorf("schema %s is not a JSON object", name)
	}

	return obj, nil
}
