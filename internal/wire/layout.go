package wire

// Field widths and header layout for the finalized buffer format. All
// multi-byte fields are little-endian and are read through internal/buf,
// never by aliasing raw pointers.
const (
	// TagSize is the width of the leading type tag on every value.
	TagSize = 1

	// BooleanPayloadSize is the width of a boolean's payload byte.
	BooleanPayloadSize = 1

	// IntegerPayloadSize is the width of an integer's 8-byte payload.
	IntegerPayloadSize = 8

	// DecimalPayloadSize is the width of a decimal's 8-byte IEEE-754 payload.
	DecimalPayloadSize = 8

	// SmallStringLenSize is the width of the small_string length field.
	SmallStringLenSize = 1
	// SmallStringMaxLen is the largest length a small_string can encode.
	SmallStringMaxLen = 1<<(8*SmallStringLenSize) - 1

	// StringLenSize is the width of the string length field.
	StringLenSize = 2
	// StringMaxLen is the largest length a string can encode.
	StringMaxLen = 1<<(8*StringLenSize) - 1

	// BigStringLenSize is the width of the big_string length field.
	BigStringLenSize = 4
	// BigStringMaxLen is the largest length the data model allows (2^32-1).
	BigStringMaxLen = 1<<32 - 1

	// ObjectKeyLenSize is the width of a key's length prefix inside an
	// object's packed pairs. Object keys are bounded to 2^16-1 bytes, so a
	// 2-byte field always suffices.
	ObjectKeyLenSize = 2
	// ObjectKeyMaxLen is the largest length an object key may have.
	ObjectKeyMaxLen = 1<<16 - 1

	// AggregateCountSize is the width of an array's element-count field
	// and an object's field-count field.
	AggregateCountSize = 4
	// AggregateTotalSizeSize is the width of an array/object's total
	// byte-size field, letting a parent skip the child without recursing.
	AggregateTotalSizeSize = 4
	// OffsetWidthFieldSize is the width of the explicit field recording
	// which offset-table entry width (1, 2, or 4 bytes) follows, letting a
	// decoder recover the width without guessing from the block size
	// alone.
	OffsetWidthFieldSize = 1

	// ArrayHeaderSize is tag + total-size + count + offset-width, before
	// the offset table itself.
	ArrayHeaderSize = TagSize + AggregateTotalSizeSize + AggregateCountSize + OffsetWidthFieldSize
	// ObjectHeaderSize mirrors ArrayHeaderSize; arrays and objects share
	// the same header shape and differ only in payload interpretation.
	ObjectHeaderSize = ArrayHeaderSize
)

// OffsetWidthFor returns the narrowest offset-table entry width (1, 2, or
// 4 bytes) able to address a block of blockSize bytes.
func OffsetWidthFor(blockSize int) int {
	switch {
	case blockSize <= 1<<8-1:
		return 1
	case blockSize <= 1<<16-1:
		return 2
	default:
		return 4
	}
}

// StringTagFor returns the tag and length-field width appropriate for a
// string of the given byte length, per the three-width small/medium/big
// string scheme.
func StringTagFor(length int) (tag Tag, lenFieldSize int) {
	switch {
	case length <= SmallStringMaxLen:
		return TagSmallString, SmallStringLenSize
	case length <= StringMaxLen:
		return TagString, StringLenSize
	default:
		return TagBigString, BigStringLenSize
	}
}
