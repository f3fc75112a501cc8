package handlers

// Тексты ответов
const (
	textInternalError = "❌ Произошла ошибка. Попробуйте позже."
	textNotLinked     = "❌ Ваш Telegram не привязан к преподавателю.\n\nСообщите администратору ваш ID: %d"
	textRoomUsage     = "Укажите аудиторию: /room <название>\n\nНапример: /room Lab 301"
	textRoomNotFound  = "❌ Аудитория «%s» не найдена."
	textUnknown       = "🤔 Неизвестная команда. Список команд: /help"

	textHelp = "📚 Справка по командам:\n\n" +
		"/session - Текущие и ближайшие занятия\n" +
		"/room <название> - Проверить доступ к аудитории\n" +
		"/start - Статус привязки аккаунта\n" +
		"/help - Показать эту справку\n\n" +
		"Аудитория доступна во время занятия и за несколько минут до начала."
)
