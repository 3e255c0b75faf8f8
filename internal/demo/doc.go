// Package demo implements the teaform-demo terminal application, a
// signup form that exercises the full binding surface: text inputs,
// a select, a checkbox, a file attachment, submit with auto reset,
// and every state cell flavor.
//
// The store flavor is chosen with TEAFORM_STORE or the -store flag.
// The file and redis flavors persist the draft across runs, so the
// form reopens exactly where it was left.
package demo
