/*
Package config loads and validates patch manifests for permpatch.

	            +-------------+
	            |  Manifest   |
	            |  (Entries)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Loads the ordered list of files to patch and their params
- Validates that each entry names exactly one of resource or capabilities
- Fills in default symbols (hook, decorator, check names and import paths)
- Drops entries matched by exclude globs

🔄 Flow:
1. Pick a parser by file extension (or a builtin manifest by name)
2. Decode the format-specific syntax into a Manifest
3. Resolve base_dir relative to the manifest file
4. Validate, default and filter

🔍 Example:

	m, err := config.Load(ctx, "permissions.yaml")
	if err != nil {
		return err
	}
	for _, e := range m.Entries {
		fmt.Println(e.Path, e.Kind(), e.Params)
	}

A YAML manifest:

	base_dir: src/app
	exclude:
	  - "legacy/**"
	entries:
	  - path: master/jabatan/page.tsx
	    resource: jabatan
	  - path: izin/page.tsx
	    capabilities: [izinabsen.index, izincuti.index]
*/
package config
