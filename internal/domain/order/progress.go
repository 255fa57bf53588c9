// Package order traduce el estado de un pedido a su progreso visible en la línea de tiempo.
package order

import "github.com/jhoicas/solar-marketplace-web/internal/domain/entity"

// Milestone hito de la línea de tiempo del pedido.
type Milestone struct {
	Label     string
	Completed bool
}

// Progress porcentaje 0–100 y estado de cada hito.
type Progress struct {
	Percent    int
	Milestones []Milestone
}

// Current etiqueta del último hito completado ("" si ninguno).
func (p Progress) Current() string {
	current := ""
	for _, m := range p.Milestones {
		if m.Completed {
			current = m.Label
		}
	}
	return current
}

// Etiquetas de los cinco hitos, en orden.
const (
	LabelOrderPlaced          = "Order Placed"
	LabelPaymentConfirmed     = "Payment Confirmed"
	LabelFundsInEscrow        = "Funds in Escrow"
	LabelInstallationStarted  = "Installation Started"
	LabelInstallationComplete = "Installation Complete"
)

// sequence posición de cada estado en la secuencia de hitos.
var sequence = []struct {
	status entity.OrderStatus
	label  string
}{
	{entity.OrderPending, LabelOrderPlaced},
	{entity.OrderPaid, LabelPaymentConfirmed},
	{entity.OrderEscrow, LabelFundsInEscrow},
	{entity.OrderInstalling, LabelInstallationStarted},
	{entity.OrderCompleted, LabelInstallationComplete},
}

var percents = map[entity.OrderStatus]int{
	entity.OrderPending:    10,
	entity.OrderPaid:       25,
	entity.OrderEscrow:     40,
	entity.OrderInstalling: 70,
	entity.OrderCompleted:  100,
	entity.OrderCancelled:  0,
}

// MapStatus función total y determinista del estado. Un estado desconocido da 0% sin hitos;
// cancelled solo conserva "Order Placed".
func MapStatus(status entity.OrderStatus) Progress {
	pos := position(status)
	milestones := make([]Milestone, len(sequence))
	for i, step := range sequence {
		completed := pos >= i
		if status == entity.OrderCancelled {
			completed = i == 0
		}
		milestones[i] = Milestone{Label: step.label, Completed: completed}
	}
	return Progress{Percent: percents[status], Milestones: milestones}
}

// position índice del estado en la secuencia, -1 si no pertenece (cancelled o desconocido).
func position(status entity.OrderStatus) int {
	for i, step := range sequence {
		if step.status == status {
			return i
		}
	}
	return -1
}
