package domain

// InlineButton - одна кнопка inline-клавиатуры. Ровно одно из полей
// CallbackData / URL должно быть заполнено.
type InlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
	URL          string `json:"url,omitempty"`
}

// InlineKeyboard - разметка интерактивных контролов сообщения
type InlineKeyboard struct {
	Rows [][]InlineButton `json:"inline_keyboard"`
}
