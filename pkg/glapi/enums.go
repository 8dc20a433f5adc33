package glapi

// OpenGL enumeration values used by glsu. They mirror the values in the
// Khronos headers so that any Functions implementation can pass them through
// unchanged.
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR                      = 0x0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	STACK_OVERFLOW                = 0x0503
	STACK_UNDERFLOW               = 0x0504
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406
	DOUBLE         = 0x140A

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	BUFFER_SIZE          = 0x8764

	STREAM_DRAW  = 0x88E0
	STREAM_READ  = 0x88E1
	STREAM_COPY  = 0x88E2
	STATIC_DRAW  = 0x88E4
	STATIC_READ  = 0x88E5
	STATIC_COPY  = 0x88E6
	DYNAMIC_DRAW = 0x88E8
	DYNAMIC_READ = 0x88E9
	DYNAMIC_COPY = 0x88EA

	POINTS                   = 0x0000
	LINES                    = 0x0001
	LINE_LOOP                = 0x0002
	LINE_STRIP               = 0x0003
	TRIANGLES                = 0x0004
	TRIANGLE_STRIP           = 0x0005
	TRIANGLE_FAN             = 0x0006
	LINES_ADJACENCY          = 0x000A
	LINE_STRIP_ADJACENCY     = 0x000B
	TRIANGLES_ADJACENCY      = 0x000C
	TRIANGLE_STRIP_ADJACENCY = 0x000D

	MAX_VERTEX_ATTRIBS = 0x8869

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	GEOMETRY_SHADER = 0x8DD9
	COMPUTE_SHADER  = 0x91B9
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84

	TEXTURE_2D             = 0x0DE1
	TEXTURE0               = 0x84C0
	TEXTURE_MAG_FILTER     = 0x2800
	TEXTURE_MIN_FILTER     = 0x2801
	TEXTURE_WRAP_S         = 0x2802
	TEXTURE_WRAP_T         = 0x2803
	NEAREST                = 0x2600
	LINEAR                 = 0x2601
	NEAREST_MIPMAP_NEAREST = 0x2700
	LINEAR_MIPMAP_NEAREST  = 0x2701
	NEAREST_MIPMAP_LINEAR  = 0x2702
	LINEAR_MIPMAP_LINEAR   = 0x2703
	REPEAT                 = 0x2901
	CLAMP_TO_BORDER        = 0x812D
	CLAMP_TO_EDGE          = 0x812F
	MIRRORED_REPEAT        = 0x8370
	RED                    = 0x1903
	RGB                    = 0x1907
	RGBA                   = 0x1908
	UNPACK_ALIGNMENT       = 0x0CF5
	PACK_ALIGNMENT         = 0x0D05

	FRAMEBUFFER          = 0x8D40
	COLOR_ATTACHMENT0    = 0x8CE0
	FRAMEBUFFER_COMPLETE = 0x8CD5

	TIMESTAMP              = 0x8E28
	QUERY_RESULT           = 0x8866
	QUERY_RESULT_AVAILABLE = 0x8867

	DEPTH_BUFFER_BIT    = 0x0100
	COLOR_BUFFER_BIT    = 0x4000
	DEPTH_TEST          = 0x0B71
	BLEND               = 0x0BE2
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303
)
