// Package config defines the flow file that configures an admitwiz wizard.
//
// A [Flow] names the wizard, lists its steps in order and carries the
// navigation options. Flows are read from YAML with [LoadFile] or taken from
// [DefaultFlow], validated, and converted into the step list and options the
// wizard controller is built from.
package config
