package dsl

// Package dsl provides the configured decoder bundle and the decoder
// factories built on the rawdec contracts:
//
// - Primitives: Bool, Number, String, Date, LiteralOf
// - Composites: Array, Object (and Bind for struct targets)
// - CreateDecoder, the generic factory passthrough for consumer kinds
//
// Concretely-typed factories are Bundle methods; factories that introduce a
// type parameter are package-level functions taking the Bundle, since Go
// methods cannot be generic:
//
//  d := dsl.Configure()
//  item := dsl.Object(d, dsl.Fields{
//      "id":     dsl.F("id", d.Number()),
//      "method": dsl.F("method", dsl.LiteralOf(d, "GET")),
//  })
//  items := dsl.Array(d, item)
//
