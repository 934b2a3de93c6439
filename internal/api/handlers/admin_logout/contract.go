package admin_logout

type AdminGate interface {
	Logout()
	IsOpen() bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
