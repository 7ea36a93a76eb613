package content

import "strconv"

// chineseOrdinals covers the group numbers the content pipeline actually
// produces. Numbers beyond the table fall back to their decimal form,
// matching the producer's naming.
var chineseOrdinals = []string{
	"一", "二", "三", "四", "五",
	"六", "七", "八", "九", "十",
	"十一", "十二", "十三", "十四", "十五",
	"十六", "十七", "十八", "十九", "二十",
}

// ChineseOrdinal renders 1..20 as 一..二十; anything else as decimal digits.
func ChineseOrdinal(n int) string {
	if n < 1 || n > len(chineseOrdinals) {
		return strconv.Itoa(n)
	}
	return chineseOrdinals[n-1]
}
