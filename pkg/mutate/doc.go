/*
Package mutate holds the pure text steps that patch a page.

	+----------+    +----------+    +----------+
	|  import  | -> |   hook   | -> |   wrap   |  resource plan
	+----------+    +----------+    +----------+

	+----------+    +----------+
	|  import  | -> |  export  |                  capabilities plan
	+----------+    +----------+

🎯 Purpose:
- One Mutator per insertion, keyed to one anchor kind
- A Pipeline threads the document through a fixed step order
- Steps never touch the filesystem

⚡ Key Responsibilities:
- Steps whose anchor is missing are skipped
- A required step that finds nothing discards the whole run
- Result records which steps changed the text
*/
package mutate
