package fsim

import (
	"github.com/yusuke-matsunaga/druid-sub000/fsim/packedval"
	"github.com/yusuke-matsunaga/druid-sub000/tvec"
)

func word2FromVal3(v tvec.Val3) packedval.Word {
	if v == tvec.Val1 {
		return packedval.AllOne
	}
	return packedval.AllZero
}

func word3FromVal3(v tvec.Val3) packedval.Word3 {
	switch v {
	case tvec.Val0:
		return packedval.Const0_3
	case tvec.Val1:
		return packedval.Const1_3
	default:
		return packedval.X3
	}
}

func setLane2(w packedval.Word, lane int, v tvec.Val3) packedval.Word {
	m := packedval.Lane(lane)
	if v == tvec.Val1 {
		return w | m
	}
	return w &^ m
}

func setLane3(w packedval.Word3, lane int, v tvec.Val3) packedval.Word3 {
	m := packedval.Lane(lane)
	switch v {
	case tvec.Val0:
		return packedval.Word3{V0: w.V0 | m, V1: w.V1 &^ m}
	case tvec.Val1:
		return packedval.Word3{V0: w.V0 &^ m, V1: w.V1 | m}
	default:
		return packedval.Word3{V0: w.V0 &^ m, V1: w.V1 &^ m}
	}
}
