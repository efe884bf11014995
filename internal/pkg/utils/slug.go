package utils

import (
	"fmt"
	"strings"
)

// asciiTable - таблица нормализации символов в ASCII. Добавление нового
// символа - одна строка.
var asciiTable = map[rune]rune{
	'á': 'a',
	'é': 'e',
	'í': 'i',
	'ó': 'o',
	'ú': 'u',
	'ü': 'u',
	'ñ': 'n',
}

// Slugify строит ключ хранения из отображаемого имени: нижний регистр,
// нормализация акцентов, пробелы и дефисы -> "_", пунктуация отбрасывается.
func Slugify(name string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(name) {
		if mapped, ok := asciiTable[r]; ok {
			r = mapped
		}

		switch {
		case r == ' ' || r == '\t' || r == '-':
			b.WriteRune('_')
		case r == '.' || r == ',' || r == '\'' || r == '"' || r == '´' || r == '`':
			// пунктуация не попадает в ключ
		default:
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), "_")
}

// UniqueKey возвращает первый свободный ключ: slug, slug_1, slug_2, ...
// Вызывается против живого содержимого партиции в момент merge.
func UniqueKey(name string, exists func(string) bool) string {
	base := Slugify(name)

	key := base
	for counter := 1; exists(key); counter++ {
		key = fmt.Sprintf("%s_%d", base, counter)
	}

	return key
}
