package format

type (
	SchemeType      uint8
	CompressionType uint8
)

const (
	SchemeReplace            SchemeType = 0x1 // SchemeReplace represents a user-supplied label-to-code mapping.
	SchemeLabel              SchemeType = 0x2 // SchemeLabel represents ordinal rank encoding.
	SchemeIndicator          SchemeType = 0x3 // SchemeIndicator represents one-vs-rest indicator encoding.
	SchemeOneHot             SchemeType = 0x4 // SchemeOneHot represents indicator-vector encoding.
	SchemeBinary             SchemeType = 0x5 // SchemeBinary represents bit-packed ordinal encoding.
	SchemeBackwardDifference SchemeType = 0x6 // SchemeBackwardDifference represents backward-difference contrast coding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s SchemeType) String() string {
	switch s {
	case SchemeReplace:
		return "Replace"
	case SchemeLabel:
		return "Label"
	case SchemeIndicator:
		return "Indicator"
	case SchemeOneHot:
		return "OneHot"
	case SchemeBinary:
		return "Binary"
	case SchemeBackwardDifference:
		return "BackwardDifference"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
