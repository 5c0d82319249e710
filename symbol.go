package huffpack

// Symbol represents one unit of input, i.e. a single byte.
type Symbol byte

// NumSymbols is the size of the Symbol alphabet.
const NumSymbols = 256

// maxBitsPerCode is the longest code a tree over NumSymbols leaves can
// produce: a fully skewed tree of 256 leaves has depth 255.
const maxBitsPerCode = NumSymbols - 1
