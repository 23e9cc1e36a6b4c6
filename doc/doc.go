// Package doc provides the structured document representation used by the
// polydoc translation layer.
//
// A Document is an ordered collection of named values. A Value is a tagged
// union over the types a document store can hold: null, number, string,
// bool, list, and nested document. Every value carries a NoIndex flag
// controlling whether the backing store may index it.
//
// Documents are schema-less: nothing in this package knows about Go types
// or hierarchies; that is the job of the translate package.
//
// # Creating Values
//
//	v := doc.FromString("hello")
//	n := doc.FromInt(42)
//	l := doc.FromList([]*doc.Value{doc.FromInt(1), doc.FromInt(2)})
//	d := doc.NewDocument()
//	d.Set("name", doc.FromString("felix").WithNoIndex(true))
//
// # Thread Safety
//
// Documents and values are not synchronized. Share them across goroutines
// only after mutation has stopped, or clone per goroutine.
package doc
