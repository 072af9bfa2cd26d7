package domain

// Callback, asenkron operasyonların sonucunu taşır; hata string olarak
// çağırana sızmaz, error değeri olarak döner.
type Callback[T any] func(result T, err error)

// DoneFunc, sonuç değeri olmayan asenkron operasyonlar için.
type DoneFunc func(err error)
