package jar

import "github.com/DaRealTurtyWurty/Railroad-sub001/errors"

// modeKind enumerates the closed set of primary operations.
type modeKind int

const (
	modeNone modeKind = iota
	modeCreate
	modeList
	modeUpdate
	modeExtract
	modeDescribeModule
	modeValidate
	modeGenerateIndex
)

// mode is a tagged variant: only generate-index carries a payload, the
// target archive. Selecting any mode overwrites the previous value, so
// the target never survives a transition away from generate-index.
type mode struct {
	kind   modeKind
	target string
}

// flag renders the mode token placed immediately after the executable
// path, or fails when no mode is selected or generate-index has no
// recorded target.
func (m mode) flag() (string, error) {
	switch m.kind {
	case modeCreate:
		return "--create", nil
	case modeList:
		return "--list", nil
	case modeUpdate:
		return "--update", nil
	case modeExtract:
		return "--extract", nil
	case modeDescribeModule:
		return "--describe-module", nil
	case modeValidate:
		return "--validate", nil
	case modeGenerateIndex:
		if m.target == "" {
			return "", errors.MissingIndexTarget(toolName)
		}
		return "--generate-index=" + m.target, nil
	default:
		return "", errors.MissingMode(toolName)
	}
}
