package rawdec

// Package rawdec decodes untyped, externally-sourced data (parsed JSON, form
// values, loosely-typed API payloads) into statically-typed values.
//
// It provides:
//
// - A Decoder[T] function contract with an injected error policy (Config)
// - A generic decoder factory (NewDecoder/Spec) for consumer-defined decoder kinds
// - A stable error model via Issues (JSON Pointer, code, message)
// - Ingestion entry points for JSON and YAML documents
//
// Design policy:
// - Keep only public contracts in the root package; put combinators under dsl/
//   and the message catalog under i18n/.
// - Decoders are stateless pure functions; the only side effect is the
//   configured error callback.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  d := dsl.Configure()
//  v, err := d.Number()(ctx, "42") // 42
//
//  user := dsl.Object(d, dsl.Fields{
//      "id":   dsl.F("id", d.Number()),
//      "name": dsl.F("name", d.String()),
//  })
//  rec, err := rawdec.DecodeJSON(ctx, user, payload)
//
