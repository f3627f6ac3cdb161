// Package output renders command results.
//
// Text output goes through Go templates (templates/*.tmpl) whose style tags
// are expanded with the semantic styles from pkg/style, or stripped when
// color is off. JSON and YAML output encode the same data for scripts.
package output
