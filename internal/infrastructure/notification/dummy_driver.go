package notification

// DummyDriver driver de desarrollo: acepta todo sin enviar nada.
type DummyDriver struct{}

// NewDummyDriver construye el driver.
func NewDummyDriver() *DummyDriver { return &DummyDriver{} }

// Send siempre reporta éxito.
func (d *DummyDriver) Send(toEmail, subject, message, reference string) bool {
	return true
}
