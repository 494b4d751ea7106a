// Package basic provides the built-in reference translators.
//
// The re-encoders (HexTranslator, UnsignedTranslator, BinaryTranslator) are
// stateless BasicTranslators: they reinterpret a raw value numerically and
// re-render it in another base, falling back to echoing the raw value with
// a warn kind when it does not decode. SequentialTranslator is the minimal
// stateful reference translator used for testing and demos: it labels
// normal values with an incrementing counter and maps meta-states to the
// UNDEF/HIGHIMP sentinels.
package basic
