// Package ilcd reads, edits, validates, and writes the six ILCD
// life-cycle-inventory dataset formats: process, flow, flow property,
// unit group, contact, and source datasets.
//
// Documents are held as generic element trees (package xmltree) and
// accessed through lightweight typed views. A view never copies data
// out of the tree. Reading a typed field converts the stored text on
// demand, so a malformed value surfaces only when the field is used.
// Per dataset kind, a resolver maps every element tag of the
// vocabulary to its view class; a tag outside the vocabulary is a
// LookupError, never a silently untyped node.
//
// A Library bundles schema validation (against bundled or configured
// XSDs), parsing single files, directories, and zip archives, and
// saving with optional attribute defaults:
//
//	lib := ilcd.NewLibrary()
//	ds, err := lib.ParseProcessFile("electricity.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, ex := range ds.Exchanges().Exchanges() {
//		fmt.Println(ex.ReferenceToFlowDataSet().ShortDescriptions())
//	}
package ilcd
