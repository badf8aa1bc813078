package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature подпись колбэка оплаты: hex(HMAC-SHA256("orderID|paymentID", secret))
func Signature(gatewayOrderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature сравнивает подпись клиента с ожидаемой за постоянное время
func VerifySignature(gatewayOrderID, paymentID, signature, secret string) bool {
	expected := Signature(gatewayOrderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
