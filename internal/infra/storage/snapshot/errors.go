package snapshot

import "errors"

var (
	// ErrPersist возвращается, когда не удалось записать снапшот; состояние не изменено
	ErrPersist = errors.New("snapshot: persist failed")

	// ErrLoad возвращается при ошибке транспорта во время загрузки
	ErrLoad = errors.New("snapshot: load failed")

	// ErrEncode возвращается при ошибке сериализации снапшота
	ErrEncode = errors.New("snapshot: encode failed")
)
