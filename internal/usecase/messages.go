package usecase

// Texts shown to site visitors and to the admin.
const (
	MsgAvailabilityFormat    = "Cupos disponibles: %s"
	MsgAvailabilityRejected  = "No se pudo verificar disponibilidad."
	MsgAvailabilityTransport = "Error al verificar disponibilidad."
	MsgRequiredFields        = "Por favor complete los campos obligatorios."
	MsgCreateFailed          = "Error al crear la reserva."
	MsgCreateTransport       = "Error de conexión con el servidor."
	MsgCreatedFormat         = "Reserva creada correctamente. ID: %s"

	MsgLoginEmpty         = "Ingrese usuario y contraseña."
	MsgLoginRejected      = "Credenciales incorrectas."
	MsgLoginTransport     = "Error de conexión."
	MsgLoginRequired      = "Debe iniciar sesión como admin."
	MsgUpdateStatusFailed = "Error al actualizar estado."
	MsgDeleteConfirm      = "Eliminar reserva?"
	MsgDeleteFailed       = "Error al eliminar."
)
