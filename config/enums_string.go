// Code generated by "stringer -type=QuoteStyle,SemiColons,TrailingCommaOpt,BracePosition,NextControlFlowPosition,OperatorPosition,SingleBodyPosition,UseBraces,ArrowParens,NewLineKind -output=enums_string.go"; DO NOT EDIT.

package config

import "strconv"

const _QuoteStyle_name = "AlwaysDoubleAlwaysSinglePreferDoublePreferSingle"

var _QuoteStyle_index = [...]uint8{0, 12, 24, 36, 48}

func (i QuoteStyle) String() string {
	if i < 0 || i >= QuoteStyle(len(_QuoteStyle_index)-1) {
		return "QuoteStyle(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _QuoteStyle_name[_QuoteStyle_index[i]:_QuoteStyle_index[i+1]]
}

const _SemiColons_name = "AlwaysPreferAsi"

var _SemiColons_index = [...]uint8{0, 6, 12, 15}

func (i SemiColons) String() string {
	if i < 0 || i >= SemiColons(len(_SemiColons_index)-1) {
		return "SemiColons(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _SemiColons_name[_SemiColons_index[i]:_SemiColons_index[i+1]]
}

const _TrailingCommaOpt_name = "CommaAlwaysCommaOnlyMultiLineCommaNever"

var _TrailingCommaOpt_index = [...]uint8{0, 11, 29, 39}

func (i TrailingCommaOpt) String() string {
	if i < 0 || i >= TrailingCommaOpt(len(_TrailingCommaOpt_index)-1) {
		return "TrailingCommaOpt(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _TrailingCommaOpt_name[_TrailingCommaOpt_index[i]:_TrailingCommaOpt_index[i+1]]
}

const _BracePosition_name = "BraceSameLineBraceNextLineBraceNextLineIfHangingBraceMaintain"

var _BracePosition_index = [...]uint8{0, 13, 26, 48, 61}

func (i BracePosition) String() string {
	if i < 0 || i >= BracePosition(len(_BracePosition_index)-1) {
		return "BracePosition(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _BracePosition_name[_BracePosition_index[i]:_BracePosition_index[i+1]]
}

const _NextControlFlowPosition_name = "FlowSameLineFlowNextLineFlowMaintain"

var _NextControlFlowPosition_index = [...]uint8{0, 12, 24, 36}

func (i NextControlFlowPosition) String() string {
	if i < 0 || i >= NextControlFlowPosition(len(_NextControlFlowPosition_index)-1) {
		return "NextControlFlowPosition(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _NextControlFlowPosition_name[_NextControlFlowPosition_index[i]:_NextControlFlowPosition_index[i+1]]
}

const _OperatorPosition_name = "OpSameLineOpNextLineOpMaintain"

var _OperatorPosition_index = [...]uint8{0, 10, 20, 30}

func (i OperatorPosition) String() string {
	if i < 0 || i >= OperatorPosition(len(_OperatorPosition_index)-1) {
		return "OperatorPosition(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _OperatorPosition_name[_OperatorPosition_index[i]:_OperatorPosition_index[i+1]]
}

const _SingleBodyPosition_name = "BodySameLineBodyNextLineBodyMaintain"

var _SingleBodyPosition_index = [...]uint8{0, 12, 24, 36}

func (i SingleBodyPosition) String() string {
	if i < 0 || i >= SingleBodyPosition(len(_SingleBodyPosition_index)-1) {
		return "SingleBodyPosition(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _SingleBodyPosition_name[_SingleBodyPosition_index[i]:_SingleBodyPosition_index[i+1]]
}

const _UseBraces_name = "BracesAlwaysBracesPreferNoneBracesWhenNotSingleLineBracesMaintain"

var _UseBraces_index = [...]uint8{0, 12, 28, 51, 65}

func (i UseBraces) String() string {
	if i < 0 || i >= UseBraces(len(_UseBraces_index)-1) {
		return "UseBraces(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _UseBraces_name[_UseBraces_index[i]:_UseBraces_index[i+1]]
}

const _ArrowParens_name = "ArrowForceArrowPreferNoneArrowMaintain"

var _ArrowParens_index = [...]uint8{0, 10, 25, 38}

func (i ArrowParens) String() string {
	if i < 0 || i >= ArrowParens(len(_ArrowParens_index)-1) {
		return "ArrowParens(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _ArrowParens_name[_ArrowParens_index[i]:_ArrowParens_index[i+1]]
}

const _NewLineKind_name = "NewLineAutoNewLineLfNewLineCrlfNewLineSystem"

var _NewLineKind_index = [...]uint8{0, 11, 20, 31, 44}

func (i NewLineKind) String() string {
	if i < 0 || i >= NewLineKind(len(_NewLineKind_index)-1) {
		return "NewLineKind(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _NewLineKind_name[_NewLineKind_index[i]:_NewLineKind_index[i+1]]
}

