// The prop subpackage provides observable property cells: typed values
// with get/set accessors, a change callback and a visibility flag.
//
// Caption displays expose their configuration through these cells so a
// host application can wire them to whatever editing widgets it has.
// The display itself subscribes to the change callbacks, and toggles
// cell visibility when a property group stops being editable.
//
// Cells are plain single-threaded state holders; if your host edits
// properties from another goroutine, synchronize externally.
package prop
