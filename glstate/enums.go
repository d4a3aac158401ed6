// This file is part of Lightmass.
//
// Lightmass is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Lightmass is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Lightmass.  If not, see <https://www.gnu.org/licenses/>.

package glstate

import "fmt"

// Enum is an OpenGL enumeration value. The constants in this package have
// the same numeric value as their GL counterparts so an Enum can be passed
// to the driver without translation.
type Enum uint32

// list of enumerations used in pipeline state.
const (
	None Enum = 0
	Zero Enum = 0
	One  Enum = 1

	// capabilities
	Blend                      Enum = 0x0BE2
	ColorLogicOp               Enum = 0x0BF2
	CullFaceCap                Enum = 0x0B44
	DepthClamp                 Enum = 0x864F
	DepthTest                  Enum = 0x0B71
	Dither                     Enum = 0x0BD0
	FramebufferSRGB            Enum = 0x8DB9
	LineSmooth                 Enum = 0x0B20
	Multisample                Enum = 0x809D
	PolygonOffsetFill          Enum = 0x8037
	PolygonOffsetLine          Enum = 0x2A02
	PolygonOffsetPoint         Enum = 0x2A01
	PolygonSmooth              Enum = 0x0B41
	PrimitiveRestart           Enum = 0x8F9D
	PrimitiveRestartFixedIndex Enum = 0x8D69
	ProgramPointSize           Enum = 0x8642
	RasterizerDiscard          Enum = 0x8C89
	SampleAlphaToCoverage      Enum = 0x809E
	SampleAlphaToOne           Enum = 0x809F
	SampleCoverageCap          Enum = 0x80A0
	SampleMask                 Enum = 0x8E51
	SampleShading              Enum = 0x8C36
	ScissorTest                Enum = 0x0C11
	StencilTest                Enum = 0x0B90
	TextureCubeMapSeamless     Enum = 0x884F
	ClipDistance0              Enum = 0x3000

	// deprecated capabilities
	AlphaTest      Enum = 0x0BC0
	ColorMaterial  Enum = 0x0B57
	Fog            Enum = 0x0B60
	Lighting       Enum = 0x0B50
	LineStipple    Enum = 0x0B24
	PolygonStipple Enum = 0x0B42

	// comparison functions
	Never    Enum = 0x0200
	Less     Enum = 0x0201
	Equal    Enum = 0x0202
	Lequal   Enum = 0x0203
	Greater  Enum = 0x0204
	Notequal Enum = 0x0205
	Gequal   Enum = 0x0206
	Always   Enum = 0x0207

	// blend factors
	SrcColor              Enum = 0x0300
	OneMinusSrcColor      Enum = 0x0301
	SrcAlpha              Enum = 0x0302
	OneMinusSrcAlpha      Enum = 0x0303
	DstAlpha              Enum = 0x0304
	OneMinusDstAlpha      Enum = 0x0305
	DstColor              Enum = 0x0306
	OneMinusDstColor      Enum = 0x0307
	SrcAlphaSaturate      Enum = 0x0308
	ConstantColor         Enum = 0x8001
	OneMinusConstantColor Enum = 0x8002
	ConstantAlpha         Enum = 0x8003
	OneMinusConstantAlpha Enum = 0x8004

	// blend equations
	FuncAdd             Enum = 0x8006
	Min                 Enum = 0x8007
	Max                 Enum = 0x8008
	FuncSubtract        Enum = 0x800A
	FuncReverseSubtract Enum = 0x800B

	// stencil operations
	Keep     Enum = 0x1E00
	Replace  Enum = 0x1E01
	Incr     Enum = 0x1E02
	Decr     Enum = 0x1E03
	Invert   Enum = 0x150A
	IncrWrap Enum = 0x8507
	DecrWrap Enum = 0x8508

	// logic operations
	Clear        Enum = 0x1500
	And          Enum = 0x1501
	AndReverse   Enum = 0x1502
	Copy         Enum = 0x1503
	AndInverted  Enum = 0x1504
	Noop         Enum = 0x1505
	Xor          Enum = 0x1506
	Or           Enum = 0x1507
	Nor          Enum = 0x1508
	Equiv        Enum = 0x1509
	OrReverse    Enum = 0x150B
	CopyInverted Enum = 0x150C
	OrInverted   Enum = 0x150D
	Nand         Enum = 0x150E
	Set          Enum = 0x150F

	// faces and winding
	Front        Enum = 0x0404
	Back         Enum = 0x0405
	FrontAndBack Enum = 0x0408
	CW           Enum = 0x0900
	CCW          Enum = 0x0901

	// polygon modes
	Point Enum = 0x1B00
	Line  Enum = 0x1B01
	Fill  Enum = 0x1B02

	// shade models
	Flat   Enum = 0x1D00
	Smooth Enum = 0x1D01

	// point sprite origin
	LowerLeft Enum = 0x8CA1
	UpperLeft Enum = 0x8CA2

	// framebuffers
	Framebuffer      Enum = 0x8D40
	ReadFramebuffer  Enum = 0x8CA8
	DrawFramebuffer  Enum = 0x8CA9
	ColorAttachment0 Enum = 0x8CE0

	// buffer targets
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893

	// data types
	Byte                    Enum = 0x1400
	UnsignedByte            Enum = 0x1401
	Short                   Enum = 0x1402
	UnsignedShort           Enum = 0x1403
	Int                     Enum = 0x1404
	UnsignedInt             Enum = 0x1405
	Float                   Enum = 0x1406
	Double                  Enum = 0x140A
	HalfFloat               Enum = 0x140B
	Int2101010Rev           Enum = 0x8D9F
	UnsignedInt2101010Rev   Enum = 0x8368
	UnsignedInt10F11F11FRev Enum = 0x8C3B

	// primitives
	Points        Enum = 0x0000
	Lines         Enum = 0x0001
	LineLoop      Enum = 0x0002
	LineStrip     Enum = 0x0003
	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005
	TriangleFan   Enum = 0x0006
	Patches       Enum = 0x000E

	// errors
	NoError          Enum = 0
	InvalidEnum      Enum = 0x0500
	InvalidValue     Enum = 0x0501
	InvalidOperation Enum = 0x0502
)

// query names used by the Get() functions of the state slices.
const (
	QueryAlphaTestFunc            Enum = 0x0BC1
	QueryAlphaTestRef             Enum = 0x0BC2
	QueryBlendColor               Enum = 0x8005
	QueryBlendDstAlpha            Enum = 0x80CA
	QueryBlendDstRGB              Enum = 0x80C8
	QueryBlendEquationAlpha       Enum = 0x883D
	QueryBlendEquationRGB         Enum = 0x8009
	QueryBlendSrcAlpha            Enum = 0x80CB
	QueryBlendSrcRGB              Enum = 0x80C9
	QueryColorWritemask           Enum = 0x0C23
	QueryCullFaceMode             Enum = 0x0B45
	QueryCurrentProgram           Enum = 0x8B8D
	QueryDepthFunc                Enum = 0x0B74
	QueryDepthRange               Enum = 0x0B70
	QueryDepthWritemask           Enum = 0x0B72
	QueryDrawBuffer0              Enum = 0x8825
	QueryDrawFramebufferBinding   Enum = 0x8CA6
	QueryFrontFace                Enum = 0x0B46
	QueryLineStipplePattern       Enum = 0x0B25
	QueryLineStippleRepeat        Enum = 0x0B26
	QueryLineWidth                Enum = 0x0B21
	QueryLogicOpMode              Enum = 0x0BF0
	QueryMinSampleShadingValue    Enum = 0x8C37
	QueryPatchVertices            Enum = 0x8E72
	QueryPointFadeThresholdSize   Enum = 0x8128
	QueryPointSize                Enum = 0x0B11
	QueryPointSpriteCoordOrigin   Enum = 0x8CA0
	QueryPolygonMode              Enum = 0x0B40
	QueryPolygonOffsetFactor      Enum = 0x8038
	QueryPolygonOffsetUnits       Enum = 0x2A00
	QueryPrimitiveRestartIndex    Enum = 0x8F9E
	QueryReadBuffer               Enum = 0x0C02
	QueryReadFramebufferBinding   Enum = 0x8CAA
	QuerySampleCoverageInvert     Enum = 0x80AB
	QuerySampleCoverageValue      Enum = 0x80AA
	QuerySampleMaskValue          Enum = 0x8E52
	QueryScissorBox               Enum = 0x0C10
	QueryShadeModel               Enum = 0x0B54
	QueryStencilBackFail          Enum = 0x8801
	QueryStencilBackFunc          Enum = 0x8800
	QueryStencilBackPassDepthFail Enum = 0x8802
	QueryStencilBackPassDepthPass Enum = 0x8803
	QueryStencilBackRef           Enum = 0x8CA3
	QueryStencilBackValueMask     Enum = 0x8CA4
	QueryStencilBackWritemask     Enum = 0x8CA5
	QueryStencilFail              Enum = 0x0B94
	QueryStencilFunc              Enum = 0x0B92
	QueryStencilPassDepthFail     Enum = 0x0B95
	QueryStencilPassDepthPass     Enum = 0x0B96
	QueryStencilRef               Enum = 0x0B97
	QueryStencilValueMask         Enum = 0x0B93
	QueryStencilWritemask         Enum = 0x0B98
	QueryVertexAttribArrayEnabled Enum = 0x8622
	QueryVertexAttribArraySize    Enum = 0x8623
	QueryVertexAttribArrayType    Enum = 0x8625
	QueryVertexAttribArrayNormal  Enum = 0x886A
	QueryVertexAttribArrayInteger Enum = 0x88FD
	QueryVertexAttribBinding      Enum = 0x82D4
	QueryVertexAttribRelOffset    Enum = 0x82D5
	QueryVertexBindingDivisor     Enum = 0x82D6
	QueryViewport                 Enum = 0x0BA2
)

// enumTable is used to translate between names and values. Where more than
// one name shares a value the first entry in the table is used by String().
var enumTable = []struct {
	name  string
	value Enum
}{
	{"ZERO", Zero}, {"NONE", None}, {"ONE", One},
	{"BLEND", Blend}, {"COLOR_LOGIC_OP", ColorLogicOp}, {"CULL_FACE", CullFaceCap},
	{"DEPTH_CLAMP", DepthClamp}, {"DEPTH_TEST", DepthTest}, {"DITHER", Dither},
	{"FRAMEBUFFER_SRGB", FramebufferSRGB}, {"LINE_SMOOTH", LineSmooth},
	{"MULTISAMPLE", Multisample}, {"POLYGON_OFFSET_FILL", PolygonOffsetFill},
	{"POLYGON_OFFSET_LINE", PolygonOffsetLine}, {"POLYGON_OFFSET_POINT", PolygonOffsetPoint},
	{"POLYGON_SMOOTH", PolygonSmooth}, {"PRIMITIVE_RESTART", PrimitiveRestart},
	{"PRIMITIVE_RESTART_FIXED_INDEX", PrimitiveRestartFixedIndex},
	{"PROGRAM_POINT_SIZE", ProgramPointSize}, {"RASTERIZER_DISCARD", RasterizerDiscard},
	{"SAMPLE_ALPHA_TO_COVERAGE", SampleAlphaToCoverage}, {"SAMPLE_ALPHA_TO_ONE", SampleAlphaToOne},
	{"SAMPLE_COVERAGE", SampleCoverageCap}, {"SAMPLE_MASK", SampleMask},
	{"SAMPLE_SHADING", SampleShading}, {"SCISSOR_TEST", ScissorTest},
	{"STENCIL_TEST", StencilTest}, {"TEXTURE_CUBE_MAP_SEAMLESS", TextureCubeMapSeamless},
	{"CLIP_DISTANCE0", ClipDistance0},
	{"ALPHA_TEST", AlphaTest}, {"COLOR_MATERIAL", ColorMaterial}, {"FOG", Fog},
	{"LIGHTING", Lighting}, {"LINE_STIPPLE", LineStipple}, {"POLYGON_STIPPLE", PolygonStipple},
	{"NEVER", Never}, {"LESS", Less}, {"EQUAL", Equal}, {"LEQUAL", Lequal},
	{"GREATER", Greater}, {"NOTEQUAL", Notequal}, {"GEQUAL", Gequal}, {"ALWAYS", Always},
	{"SRC_COLOR", SrcColor}, {"ONE_MINUS_SRC_COLOR", OneMinusSrcColor},
	{"SRC_ALPHA", SrcAlpha}, {"ONE_MINUS_SRC_ALPHA", OneMinusSrcAlpha},
	{"DST_ALPHA", DstAlpha}, {"ONE_MINUS_DST_ALPHA", OneMinusDstAlpha},
	{"DST_COLOR", DstColor}, {"ONE_MINUS_DST_COLOR", OneMinusDstColor},
	{"SRC_ALPHA_SATURATE", SrcAlphaSaturate}, {"CONSTANT_COLOR", ConstantColor},
	{"ONE_MINUS_CONSTANT_COLOR", OneMinusConstantColor}, {"CONSTANT_ALPHA", ConstantAlpha},
	{"ONE_MINUS_CONSTANT_ALPHA", OneMinusConstantAlpha},
	{"FUNC_ADD", FuncAdd}, {"MIN", Min}, {"MAX", Max}, {"FUNC_SUBTRACT", FuncSubtract},
	{"FUNC_REVERSE_SUBTRACT", FuncReverseSubtract},
	{"KEEP", Keep}, {"REPLACE", Replace}, {"INCR", Incr}, {"DECR", Decr},
	{"INVERT", Invert}, {"INCR_WRAP", IncrWrap}, {"DECR_WRAP", DecrWrap},
	{"CLEAR", Clear}, {"AND", And}, {"AND_REVERSE", AndReverse}, {"COPY", Copy},
	{"AND_INVERTED", AndInverted}, {"NOOP", Noop}, {"XOR", Xor}, {"OR", Or},
	{"NOR", Nor}, {"EQUIV", Equiv}, {"OR_REVERSE", OrReverse},
	{"COPY_INVERTED", CopyInverted}, {"OR_INVERTED", OrInverted}, {"NAND", Nand}, {"SET", Set},
	{"FRONT", Front}, {"BACK", Back}, {"FRONT_AND_BACK", FrontAndBack}, {"CW", CW}, {"CCW", CCW},
	{"POINT", Point}, {"LINE", Line}, {"FILL", Fill}, {"FLAT", Flat}, {"SMOOTH", Smooth},
	{"LOWER_LEFT", LowerLeft}, {"UPPER_LEFT", UpperLeft},
	{"FRAMEBUFFER", Framebuffer}, {"READ_FRAMEBUFFER", ReadFramebuffer},
	{"DRAW_FRAMEBUFFER", DrawFramebuffer}, {"COLOR_ATTACHMENT0", ColorAttachment0},
	{"ARRAY_BUFFER", ArrayBuffer}, {"ELEMENT_ARRAY_BUFFER", ElementArrayBuffer},
	{"BYTE", Byte}, {"UNSIGNED_BYTE", UnsignedByte}, {"SHORT", Short},
	{"UNSIGNED_SHORT", UnsignedShort}, {"INT", Int}, {"UNSIGNED_INT", UnsignedInt},
	{"FLOAT", Float}, {"DOUBLE", Double}, {"HALF_FLOAT", HalfFloat},
	{"INT_2_10_10_10_REV", Int2101010Rev}, {"UNSIGNED_INT_2_10_10_10_REV", UnsignedInt2101010Rev},
	{"UNSIGNED_INT_10F_11F_11F_REV", UnsignedInt10F11F11FRev},
	{"POINTS", Points}, {"LINES", Lines}, {"LINE_LOOP", LineLoop}, {"LINE_STRIP", LineStrip},
	{"TRIANGLES", Triangles}, {"TRIANGLE_STRIP", TriangleStrip}, {"TRIANGLE_FAN", TriangleFan},
	{"PATCHES", Patches},
	{"INVALID_ENUM", InvalidEnum}, {"INVALID_VALUE", InvalidValue},
	{"INVALID_OPERATION", InvalidOperation},
}

var enumByName map[string]Enum
var nameByEnum map[Enum]string

func init() {
	enumByName = make(map[string]Enum, len(enumTable))
	nameByEnum = make(map[Enum]string, len(enumTable))
	for _, e := range enumTable {
		enumByName[e.name] = e.value
		if _, ok := nameByEnum[e.value]; !ok {
			nameByEnum[e.value] = e.name
		}
	}
}

// EnumByName returns the Enum for the GL name, without the GL_ prefix. For
// example, "SRC_ALPHA".
func EnumByName(name string) (Enum, bool) {
	e, ok := enumByName[name]
	return e, ok
}

func (e Enum) String() string {
	if n, ok := nameByEnum[e]; ok {
		return n
	}
	return fmt.Sprintf("0x%04x", uint32(e))
}
