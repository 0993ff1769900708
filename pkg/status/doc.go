/*
Package status owns the filesystem side of a patch run and the vocabulary for
reporting it.

	            +-------------+
	            |   Status    |
	            +------+------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+------+           +------+-----+
	|  Manager   |           |  Outcome   |
	| (disk I/O) |           | (+Result)  |
	+------------+           +------------+

🎯 Purpose:
- Reads and fully overwrites files under a base directory
- Names the five per-file outcomes and their summary buckets
- Formats one console line per file

⚡ Key Responsibilities:
- Existence checks that tell "missing" apart from I/O faults
- Atomic write-back (temp file + rename) preserving file mode
- No backups: version control is the rollback mechanism

🔍 Example:

	mgr := status.NewManager("src/app")
	ok, err := mgr.FileExists(ctx, "master/jabatan/page.tsx")
	...
	fmt.Println(status.FormatResult(status.Result{
		Path:    "master/jabatan/page.tsx",
		Params:  config.Params{Resource: "jabatan"},
		Outcome: status.Applied,
	}))
*/
package status
