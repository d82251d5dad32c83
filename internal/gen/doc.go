// Package gen emits the nullable companion of a struct declaration.
//
// Generation approach uses text/template + go/format for readable Go code.
// For a struct S with fields F1 T1 ... Fn Tn the output declares:
//   - NullableS, where every field holds an optional.Value[T] (or a *T in
//     pointer mode), so the zero value has every field absent
//   - NewNullableS(f1 T1, ..., fn Tn), every field present
//   - NewNullableSDefault(), every field present with its zero value
//   - GetF, LookupF and SetF per field
package gen
