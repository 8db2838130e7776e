package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bionicotaku/lingo-services-media/internal/models/validation"
	"github.com/bionicotaku/lingo-services-media/internal/repositories"
)

// 外键集合的展示标签，出现在校验消息中。
const (
	LabelCategories  = "categories"
	LabelGenres      = "genres"
	LabelCastMembers = "cast members"
)

// ReferenceLookup 返回 ids 中实际存在的子集。
type ReferenceLookup func(ctx context.Context, ids []string) ([]string, error)

// ValidateReferences 检查 requested 中不存在的 ID，并以单条消息汇报。
// 输入为空时不调用 lookup；缺失 ID 去重并排序，保证消息稳定。
// lookup 的 I/O 失败作为第二个返回值，不计入校验结果。
func ValidateReferences(ctx context.Context, label string, requested []string, lookup ReferenceLookup) (*validation.Notification, error) {
	n := validation.NewNotification()
	ids := distinct(requested)
	if len(ids) == 0 {
		return n, nil
	}

	found, err := lookup(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", label, err)
	}
	existing := make(map[string]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}

	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		n.AppendMessage(fmt.Sprintf("Some %s could not be found: %s", label, strings.Join(missing, ", ")))
	}
	return n, nil
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ReferenceValidator 针对分类、类型、演员三类外键分别校验并合并结果。
type ReferenceValidator struct {
	categories  ReferenceGateway
	genres      ReferenceGateway
	castMembers ReferenceGateway
}

// NewReferenceValidator 构造 ReferenceValidator。
func NewReferenceValidator(categories, genres, castMembers ReferenceGateway) *ReferenceValidator {
	return &ReferenceValidator{categories: categories, genres: genres, castMembers: castMembers}
}

// ProvideReferenceValidator 将三个存在性仓储组装为校验器（供 Wire 注入使用）。
func ProvideReferenceValidator(categories *repositories.CategoryRepository, genres *repositories.GenreRepository, castMembers *repositories.CastMemberRepository) *ReferenceValidator {
	return NewReferenceValidator(categories, genres, castMembers)
}

// Validate 依次校验三类外键，三次结果全部合并后返回。
func (v *ReferenceValidator) Validate(ctx context.Context, categories, genres, castMembers []string) (*validation.Notification, error) {
	checks := []struct {
		label   string
		ids     []string
		gateway ReferenceGateway
	}{
		{LabelCategories, categories, v.categories},
		{LabelGenres, genres, v.genres},
		{LabelCastMembers, castMembers, v.castMembers},
	}

	merged := validation.NewNotification()
	for _, check := range checks {
		n, err := ValidateReferences(ctx, check.label, check.ids, check.gateway.ExistsByIDs)
		if err != nil {
			return nil, err
		}
		merged.Merge(n)
	}
	return merged, nil
}
