package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern membungkus search untuk ILIKE dengan wildcard di kedua sisi.
// '%' dan '_' dari user di-escape (escape char default Postgres adalah '\').
// Search kosong tetap kosong supaya klausa `$1 = ''` menampilkan semua baris.
func containsPattern(search string) string {
	if search == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(search) + "%"
}
