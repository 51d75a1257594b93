// Package request decodes and validates property mutation requests.
//
// A request is a list of [Property] values, each naming a key, an action
// ("update" or "delete") and, for updates, a value. Requests can be read
// from YAML, JSON, TOML or HCL documents, or built from key=value strings.
// [Build] validates a request and converts it to a [patch.Request];
// [Convert] skips validation.
package request
