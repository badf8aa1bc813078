package payment

import "testing"

func TestSignature_KnownVector(t *testing.T) {
	got := Signature("order_abc", "pay_123", "s3cr3t")
	want := "070ea2f5813be979e4d4dd50f9840717bb01adf600c92662f401086c6cabbf9a"
	if got != want {
		t.Fatalf("signature mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestVerifySignature(t *testing.T) {
	sig := Signature("order_abc", "pay_123", "s3cr3t")

	if !VerifySignature("order_abc", "pay_123", sig, "s3cr3t") {
		t.Fatalf("valid signature rejected")
	}
	if VerifySignature("order_abc", "pay_999", sig, "s3cr3t") {
		t.Fatalf("signature must bind the payment id")
	}
	if VerifySignature("order_xyz", "pay_123", sig, "s3cr3t") {
		t.Fatalf("signature must bind the gateway order id")
	}
	if VerifySignature("order_abc", "pay_123", sig, "other") {
		t.Fatalf("wrong secret must not verify")
	}
	if VerifySignature("order_abc", "pay_123", "", "s3cr3t") {
		t.Fatalf("empty signature must not verify")
	}
}
