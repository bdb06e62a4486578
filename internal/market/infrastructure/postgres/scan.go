package postgres

import "github.com/Lexv0lk/secondhand-market/internal/market/domain"

const (
	productColumns = `id, title, description, price, image_url, seller_id, status, report_count, created_at`
	userColumns    = `id, username, email, bio, balance, is_admin, is_suspended, report_count, created_at`
	orderColumns   = `id, buyer_id, seller_id, product_id, amount, created_at`
	reportColumns  = `id, reporter_id, target_type, target_id, reason, status, created_at`
	roomColumns    = `r.id, r.name, r.is_global, r.created_at,
		ARRAY(SELECT p.user_id FROM chat_participants p WHERE p.room_id = r.id ORDER BY p.user_id)`
	messageColumns = `m.id, m.room_id, m.sender_id, u.username, m.content, m.created_at`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var product domain.Product
	var status string

	err := row.Scan(
		&product.ID,
		&product.Title,
		&product.Description,
		&product.Price,
		&product.ImageUrl,
		&product.SellerID,
		&status,
		&product.ReportCount,
		&product.CreatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}

	product.Status = domain.ProductStatus(status)
	return product, nil
}

func scanUser(row rowScanner) (domain.User, error) {
	var user domain.User

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Bio,
		&user.Balance,
		&user.IsAdmin,
		&user.IsSuspended,
		&user.ReportCount,
		&user.CreatedAt,
	)

	return user, err
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var order domain.Order

	err := row.Scan(&order.ID, &order.BuyerID, &order.SellerID, &order.ProductID, &order.Amount, &order.CreatedAt)

	return order, err
}

func scanReport(row rowScanner) (domain.Report, error) {
	var report domain.Report
	var targetType, status string

	err := row.Scan(&report.ID, &report.ReporterID, &targetType, &report.TargetID, &report.Reason, &status, &report.CreatedAt)
	if err != nil {
		return domain.Report{}, err
	}

	report.TargetType = domain.ReportTargetType(targetType)
	report.Status = domain.ReportStatus(status)
	return report, nil
}

func scanRoom(row rowScanner) (domain.Room, error) {
	var room domain.Room

	err := row.Scan(&room.ID, &room.Name, &room.IsGlobal, &room.CreatedAt, &room.ParticipantIDs)

	return room, err
}

func scanMessage(row rowScanner) (domain.Message, error) {
	var message domain.Message

	err := row.Scan(&message.ID, &message.RoomID, &message.SenderID, &message.SenderName, &message.Content, &message.CreatedAt)

	return message, err
}
