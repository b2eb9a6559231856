package models

import "strconv"

// BlockTagLatest asks the balance oracle for the chain head.
const BlockTagLatest = "latest"

// BlockTag formats a block number as an oracle block tag.
func BlockTag(block uint64) string {
	return formatUint(block)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
