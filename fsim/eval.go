package fsim

import (
	"fmt"

	"github.com/yusuke-matsunaga/druid-sub000/fsim/packedval"
	"github.com/yusuke-matsunaga/druid-sub000/netlist"
)

func evalGate2(kind int8, ins []packedval.Word) packedval.Word {
	switch netlist.GateKind(kind) {
	case netlist.Const0:
		return packedval.AllZero
	case netlist.Const1:
		return packedval.AllOne
	case netlist.Buf:
		return packedval.Buf2(ins[0])
	case netlist.Not:
		return packedval.Not2(ins[0])
	case netlist.And:
		return packedval.AndAll2(ins)
	case netlist.Nand:
		return packedval.NandAll2(ins)
	case netlist.Or:
		return packedval.OrAll2(ins)
	case netlist.Nor:
		return packedval.NorAll2(ins)
	case netlist.Xor:
		return packedval.XorAll2(ins)
	case netlist.Xnor:
		return packedval.XnorAll2(ins)
	default:
		panic(fmt.Sprintf("evalGate2: gate kind %v has no evaluation (Input terminals are broadcast, not evaluated)", netlist.GateKind(kind)))
	}
}

func evalGate3(kind int8, ins []packedval.Word3) packedval.Word3 {
	switch netlist.GateKind(kind) {
	case netlist.Const0:
		return packedval.Const0_3
	case netlist.Const1:
		return packedval.Const1_3
	case netlist.Buf:
		return packedval.Buf3(ins[0])
	case netlist.Not:
		return packedval.Not3(ins[0])
	case netlist.And:
		return packedval.AndAll3(ins)
	case netlist.Nand:
		return packedval.NandAll3(ins)
	case netlist.Or:
		return packedval.OrAll3(ins)
	case netlist.Nor:
		return packedval.NorAll3(ins)
	case netlist.Xor:
		return packedval.XorAll3(ins)
	case netlist.Xnor:
		return packedval.XnorAll3(ins)
	default:
		panic(fmt.Sprintf("evalGate3: gate kind %v has no evaluation (Input terminals are broadcast, not evaluated)", netlist.GateKind(kind)))
	}
}
