package xspan

// =============================================================================
// 定宽十六进制编解码
// =============================================================================

// hexNibble 将单个小写十六进制字符转换为数值，非法字符返回 -1。
//
// 设计决策: 不接受大写。W3C 规范规定线上格式为小写十六进制，
// 宽松接受大写会产生同一 ID 的多种写法，干扰全零无效值的判定。
func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// parseHexFixed 将定宽小写十六进制字符串解码到 dst。
//
// 输入长度必须恰好为 len(dst)*2；偶数下标字符为高半字节，奇数下标为低半字节。
// 任何长度不符或非法字符都会将 dst 清零并返回 false。
func parseHexFixed(dst []byte, s string) bool {
	if len(s) != len(dst)*2 {
		for j := range dst {
			dst[j] = 0
		}
		return false
	}
	for i := range dst {
		hi := hexNibble(s[2*i])
		lo := hexNibble(s[2*i+1])
		if hi < 0 || lo < 0 {
			for j := range dst {
				dst[j] = 0
			}
			return false
		}
		dst[i] = byte(hi)<<4 | byte(lo)
	}
	return true
}

// isLowerHex 判断字符串是否全部由小写十六进制字符组成。
func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if hexNibble(s[i]) < 0 {
			return false
		}
	}
	return true
}
