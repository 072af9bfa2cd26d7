package domain

import "errors"

var (
	ErrValidation           = errors.New("doğrulama hatası")
	ErrUserNotFound         = errors.New("kullanıcı bulunamadı")
	ErrEventNotFound        = errors.New("etkinlik bulunamadı")
	ErrTicketNotFound       = errors.New("bilet bulunamadı")
	ErrNotificationNotFound = errors.New("bildirim bulunamadı")
	ErrEmailTaken           = errors.New("bu e-posta adresi zaten kullanılıyor")
	ErrInvalidCredentials   = errors.New("geçersiz e-posta veya şifre")
	ErrDuplicateTicketCode  = errors.New("bilet kodu zaten mevcut")
	ErrCodeRetryExhausted   = errors.New("benzersiz bilet kodu üretilemedi")
	ErrDataReset            = errors.New("şema geçişi başarısız, veriler sıfırlanarak yeniden oluşturuldu")
	ErrWriterBusy           = errors.New("yazma kuyruğu dolu, işlem reddedildi")
)
