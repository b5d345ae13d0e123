package apperr

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ошибки доменного уровня. Слои ниже хендлеров возвращают их (возможно,
// обернутыми через %w), хендлеры сопоставляют через errors.Is и выбирают
// HTTP-статус.
var (
	ErrNotFound           = errors.New("запись не найдена")
	ErrIncorrectID        = errors.New("некорректный идентификатор")
	ErrNotOwner           = errors.New("нет прав на это действие")
	ErrAlreadyLiked       = errors.New("пост уже лайкнут")
	ErrNotLiked           = errors.New("пост еще не лайкнут")
	ErrCommentNotFound    = errors.New("комментарий не найден")
	ErrEmailTaken         = errors.New("email уже зарегистрирован")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
)

// Authorize - единая проверка владения ресурсом. Владелец передается
// вызывающим: для поста это автор поста, для комментария - автор комментария.
func Authorize(requesterID, ownerID primitive.ObjectID) error {
	if requesterID != ownerID {
		return ErrNotOwner
	}
	return nil
}
