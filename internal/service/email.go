package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/monitoring"
	"chatmail/backend/internal/storage"
)

// EmailService 封装邮件发送与管理逻辑。
type EmailService struct {
	repo    storage.EmailRepository
	logger  *zap.Logger
	metrics *monitoring.Metrics // 可选
}

// NewEmailService 创建邮件业务服务。
func NewEmailService(repo storage.EmailRepository, logger *zap.Logger) *EmailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailService{repo: repo, logger: logger}
}

// SetMetrics 设置监控指标（可选，用于记录扇出副本数量）。
func (s *EmailService) SetMetrics(metrics *monitoring.Metrics) {
	s.metrics = metrics
}

// SendEmailInput 定义发送邮件的输入。
type SendEmailInput struct {
	Sender  string
	To      []string
	CC      []string
	BCC     []string
	Subject string
	Body    string
}

// Send 发送一封邮件。
//
// 产生 1 条 sent 记录（无 owner）加上每个 to 收件人各一条独立的
// inbox 副本。cc/bcc 收件人不产生副本（固定契约）。两次写入不构成
// 事务：副本写入失败时 sent 记录保留，调用方需容忍最终而非原子的
// 扇出（至少一次语义）。返回 sent 记录。
func (s *EmailService) Send(ctx context.Context, input SendEmailInput) (*domain.Email, error) {
	if err := domain.ValidateEmailAddress(input.Sender); err != nil {
		return nil, err
	}
	for _, list := range [][]string{input.To, input.CC, input.BCC} {
		for _, addr := range list {
			if err := domain.ValidateEmailAddress(addr); err != nil {
				return nil, err
			}
		}
	}

	now := time.Now().UTC()
	sent := &domain.Email{
		Sender:    input.Sender,
		To:        emptyIfNil(input.To),
		CC:        emptyIfNil(input.CC),
		BCC:       emptyIfNil(input.BCC),
		Subject:   input.Subject,
		Body:      input.Body,
		Read:      false,
		Folder:    domain.FolderSent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateEmail(ctx, sent); err != nil {
		return nil, err
	}

	if len(sent.To) > 0 {
		copyTime := time.Now().UTC()
		copies := make([]*domain.Email, 0, len(sent.To))
		for _, recipient := range sent.To {
			copies = append(copies, sent.InboxCopy(recipient, copyTime))
		}
		if err := s.repo.CreateEmails(ctx, copies); err != nil {
			// sent 记录已落库；扇出失败不回滚
			s.logger.Error("inbox fan-out failed after sent record was created",
				zap.String("email_id", sent.ID.Hex()),
				zap.Int("recipients", len(copies)),
				zap.Error(err),
			)
			return nil, err
		}
		if s.metrics != nil {
			s.metrics.EmailInboxCopies.Add(float64(len(copies)))
		}
	}

	return sent, nil
}

// List 返回匹配 owner/folder 筛选的邮件（时间降序）。
// 两个筛选都是可选的精确匹配，为空表示不限制。
func (s *EmailService) List(ctx context.Context, owner, folder string) ([]domain.Email, error) {
	return s.repo.ListEmails(ctx, storage.EmailFilter{Owner: owner, Folder: folder})
}

// UpdateEmailInput 定义邮件部分更新的输入；nil 字段保持原值。
type UpdateEmailInput struct {
	Read   *bool
	Folder *string
}

// Update 更新邮件的已读标记和/或文件夹。
// 无论更新了哪些字段，updated_at 都会刷新。
func (s *EmailService) Update(ctx context.Context, emailID string, input UpdateEmailInput) (*domain.Email, error) {
	id, err := domain.ParseID(emailID)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateEmail(ctx, id, storage.EmailUpdate{
		Read:      input.Read,
		Folder:    input.Folder,
		UpdatedAt: time.Now().UTC(),
	})
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
