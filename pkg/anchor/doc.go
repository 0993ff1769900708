/*
Package anchor finds the places in a page where patches are inserted.

Each Kind names one structural shape (an import line, the start of the page
function, an action button or link, the default export). The Regexp locator
matches those shapes with regular expressions; any Locator can replace it
without touching the mutators.

🔍 Example:

	loc := anchor.New(anchor.Options{AnchorImport: "import { withPermission } from '@/hoc/withPermission';"})
	m, ok := loc.Find(doc, anchor.DeleteActionElementAnchor)
*/
package anchor
