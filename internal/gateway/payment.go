package gateway

// PaymentInfo - платёж заказа, в который обработчики ответов шлюза пишут дополнительные данные
type PaymentInfo interface {
	SetAdditionalInformation(key, value string)
}

// PaymentDataObject - ссылка на платёж внутри handling subject
type PaymentDataObject interface {
	Payment() PaymentInfo
}

type paymentDataObject struct {
	payment PaymentInfo
}

// NewPaymentDataObject оборачивает платёж для передачи в subject
func NewPaymentDataObject(payment PaymentInfo) PaymentDataObject {
	return &paymentDataObject{payment: payment}
}

func (p *paymentDataObject) Payment() PaymentInfo {
	return p.payment
}

// Ключи handling subject и response
const (
	SubjectKeyPayment = "payment"
	ResponseKeyObject = "object"
)

// BuildSubject собирает handling subject для обработчиков ответа
func BuildSubject(payment PaymentDataObject) map[string]any {
	return map[string]any{SubjectKeyPayment: payment}
}

// BuildResponse собирает response с результатом операции шлюза
func BuildResponse(result any) map[string]any {
	return map[string]any{ResponseKeyObject: result}
}
