package summarizer

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

const defaultTargetLength = 600 // 抽取式摘要的默认目标长度（字符）

// stopWords 不参与词频统计的常见词
var stopWords = map[string]bool{
	// 英文常见词
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"day": true, "get": true, "has": true, "him": true, "his": true,
	"how": true, "its": true, "may": true, "new": true, "now": true,
	"old": true, "see": true, "two": true, "who": true, "did": true,
	"let": true, "put": true, "say": true, "she": true, "too": true,
	"use": true, "this": true, "that": true, "with": true, "have": true,
	"from": true, "they": true, "will": true, "would": true, "there": true,
	"their": true, "what": true, "about": true, "which": true,
	// 中文常见词（按二字词统计）
	"我们": true, "你们": true, "他们": true, "这个": true, "那个": true,
	"什么": true, "可以": true, "现在": true, "大家": true, "时候": true,
	"就是": true, "没有": true, "一个": true, "这样": true, "那样": true,
	"因为": true, "所以": true, "但是": true, "如果": true, "还是": true,
	"已经": true, "一下": true, "不是": true, "应该": true, "觉得": true,
}

// ExtractiveBackend 抽取式摘要后端：按词频打分选取信息量最高的消息拼成摘要
// 纯确定性实现，无外部依赖，只在输入为空时失败
type ExtractiveBackend struct {
	targetLength int
}

func NewExtractiveBackend(targetLength int) *ExtractiveBackend {
	if targetLength <= 0 {
		targetLength = defaultTargetLength
	}
	return &ExtractiveBackend{targetLength: targetLength}
}

func (b *ExtractiveBackend) Name() string {
	return BackendExtractive
}

func (b *ExtractiveBackend) Available() bool {
	return true
}

type candidate struct {
	order      int // 原始顺序，用于稳定排序和按时间输出
	senderName string
	text       string
	tokens     []string
}

func (b *ExtractiveBackend) Summarize(ctx context.Context, segments []ConversationSegment) (string, error) {
	candidates := collectCandidates(segments, true)
	if len(candidates) == 0 {
		// 全部被过滤时退回未过滤的消息集，保证非空输入必有输出
		candidates = collectCandidates(segments, false)
	}
	if len(candidates) == 0 {
		return "", ErrEmptyInput
	}

	// 全量词频
	tf := make(map[string]int)
	for _, c := range candidates {
		for _, token := range c.tokens {
			tf[token]++
		}
	}

	// 打分：消息内去重词的词频之和，乘以长度偏置，偏向更长的实质性消息
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		seen := make(map[string]bool, len(c.tokens))
		sum := 0
		for _, token := range c.tokens {
			if !seen[token] {
				seen[token] = true
				sum += tf[token]
			}
		}
		scores[i] = float64(sum) * (1 + math.Log(1+float64(len(c.tokens))))
	}

	// 按分数降序选取，平分时取更早的消息，直到达到目标长度
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return order[a] < order[b]
	})

	selected := make([]int, 0)
	total := 0
	for _, idx := range order {
		c := candidates[idx]
		selected = append(selected, idx)
		total += len([]rune(c.text)) + len([]rune(c.senderName)) + 4
		if total >= b.targetLength {
			break
		}
	}

	// 输出恢复时间顺序
	sort.Ints(selected)
	lines := make([]string, 0, len(selected))
	for _, idx := range selected {
		c := candidates[idx]
		lines = append(lines, fmt.Sprintf("• %s: %s", c.senderName, c.text))
	}

	return strings.Join(lines, "\n"), nil
}

// collectCandidates 收集候选消息并做近似去重
// filtered 为 true 时跳过命令消息和过短消息
func collectCandidates(segments []ConversationSegment, filtered bool) []candidate {
	candidates := make([]candidate, 0)
	dedup := make(map[string]bool)
	order := 0

	for _, seg := range segments {
		for _, m := range seg.Messages {
			order++
			text := strings.TrimSpace(m.Text)
			if text == "" {
				continue
			}
			if filtered {
				if strings.HasPrefix(text, "/") || strings.HasPrefix(text, "!") {
					continue
				}
				if len([]rune(text)) < 6 {
					continue
				}
			}

			normalized := normalizeText(text)
			if normalized == "" || dedup[normalized] {
				continue
			}
			dedup[normalized] = true

			candidates = append(candidates, candidate{
				order:      order,
				senderName: m.SenderName,
				text:       text,
				tokens:     informativeTokens(text),
			})
		}
	}
	return candidates
}

// normalizeText 去掉标点和空白并转小写，用于近似去重
func normalizeText(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// informativeTokens 提取参与词频统计的词：
// 拉丁词取长度大于 3 的非停用词；中日韩文本取相邻二字组合
func informativeTokens(text string) []string {
	// 去掉链接和 @ 提及
	fields := strings.Fields(strings.ToLower(text))
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f, "http://") || strings.HasPrefix(f, "https://") || strings.HasPrefix(f, "@") {
			continue
		}
		kept = append(kept, f)
	}

	tokens := make([]string, 0)
	var latin []rune
	var cjk []rune

	flushLatin := func() {
		if len(latin) > 3 {
			word := string(latin)
			if !stopWords[word] {
				tokens = append(tokens, word)
			}
		}
		latin = latin[:0]
	}
	flushCJK := func() {
		for i := 0; i+1 < len(cjk); i++ {
			bigram := string(cjk[i : i+2])
			if !stopWords[bigram] {
				tokens = append(tokens, bigram)
			}
		}
		cjk = cjk[:0]
	}

	for _, f := range kept {
		for _, r := range f {
			switch {
			case unicode.Is(unicode.Han, r):
				flushLatin()
				cjk = append(cjk, r)
			case unicode.IsLetter(r) || unicode.IsDigit(r):
				flushCJK()
				latin = append(latin, r)
			default:
				flushLatin()
				flushCJK()
			}
		}
		flushLatin()
		flushCJK()
	}

	return tokens
}
