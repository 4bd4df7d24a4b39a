package life

// Bit n of a packed buffer lives in byte n/8 under mask 1<<(n%8).

func byteLen(bits uint64) int { return int((bits + 7) / 8) }

func get(buf []byte, n int) bool { return buf[n>>3]&(1<<(n&7)) != 0 }

func set(buf []byte, n int) { buf[n>>3] |= 1 << (n & 7) }

func flip(buf []byte, n int) { buf[n>>3] ^= 1 << (n & 7) }
