package ads8688

import "sync"

var (
	threeBytes = &sync.Pool{New: func() interface{} { return make([]byte, 3) }}
	twoBytes   = &sync.Pool{New: func() interface{} { return make([]byte, 2) }}
)

func get3Bytes() []byte {
	return threeBytes.Get().([]byte)
}

func put3Bytes(b []byte) {
	b[0], b[1], b[2] = 0, 0, 0
	threeBytes.Put(b)
}

func get2Bytes() []byte {
	return twoBytes.Get().([]byte)
}

func put2Bytes(b []byte) {
	b[0], b[1] = 0, 0
	twoBytes.Put(b)
}
