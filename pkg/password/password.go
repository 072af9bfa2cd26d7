package password

import "golang.org/x/crypto/bcrypt"

// Hash, parolayı rastgele tuz ile tek yönlü olarak özetler; aynı parola
// için her çağrı farklı bir çıktı üretir.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify sabit zamanlı karşılaştırma yapar.
func Verify(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
