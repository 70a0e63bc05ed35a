package service

import (
	"context"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/storage"
)

// searchResultLimit 每个类别的结果上限
const searchResultLimit = 10

// SearchService 跨会话与邮件的关键字搜索。
type SearchService struct {
	conversations storage.ConversationRepository
	emails        storage.EmailRepository
}

// NewSearchService 创建搜索服务。
func NewSearchService(conversations storage.ConversationRepository, emails storage.EmailRepository) *SearchService {
	return &SearchService{
		conversations: conversations,
		emails:        emails,
	}
}

// SearchResult 搜索结果，两个类别各自截断到上限。
type SearchResult struct {
	Conversations []domain.Conversation
	Emails        []domain.Email
}

// Search 执行大小写不敏感的子串搜索：会话匹配标题，
// 邮件匹配主题或正文。空查询返回两个空列表（不是错误）。
func (s *SearchService) Search(ctx context.Context, query string) (*SearchResult, error) {
	result := &SearchResult{
		Conversations: make([]domain.Conversation, 0),
		Emails:        make([]domain.Email, 0),
	}
	if query == "" {
		return result, nil
	}

	conversations, err := s.conversations.SearchConversations(ctx, query, searchResultLimit)
	if err != nil {
		return nil, err
	}
	emails, err := s.emails.SearchEmails(ctx, query, searchResultLimit)
	if err != nil {
		return nil, err
	}

	result.Conversations = conversations
	result.Emails = emails
	return result, nil
}
