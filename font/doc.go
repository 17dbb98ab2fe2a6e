// The font subpackage contains helper functions to parse fonts and
// obtain information from them (name, family, etc.), alongside a
// [Library] type that indexes fonts by family name.
//
// Caption displays select fonts by family, the same way users pick
// them in a font dialog, so the [Library] is keyed by family and can
// report the full sorted family list through [Library.Families]().
package font
