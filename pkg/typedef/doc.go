// Package typedef models contract message declarations as they exist during
// a code-generation pass: struct and enum definitions, their fields and
// variants, and the serialization annotations later passes attach. It also
// loads declarations from JSON/YAML documents produced by declaration
// front-ends.
package typedef
