// Package services implements the parameter toggle on top of a
// paramflip.ParameterStore.
//
// The toggle is a single read-modify-write: list every parameter of the
// group, take the first entry with the target name, swap "0" and "1", and
// write the new value back with apply method "immediate". Irregular input
// (missing parameter, value outside "0"/"1") is governed by paramflip.Policy.
package services
