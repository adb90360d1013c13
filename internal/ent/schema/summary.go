package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Summary holds the schema definition for the Summary entity.
type Summary struct {
	ent.Schema
}

func (Summary) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Summary.
func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("chat_id").Comment("群聊ID"),
		field.Time("start_time").Comment("摘要区间开始时间"),
		field.Time("end_time").Comment("摘要区间结束时间"),
		field.Enum("status").
			Values("produced", "insufficient_activity", "failed").
			Comment("摘要状态：produced=已生成, insufficient_activity=消息不足, failed=全部后端失败"),
		field.String("backend").Optional().Comment("生成摘要的后端名称，status 非 produced 时为空"),
		field.Text("content").Comment("摘要文本内容"),
		field.Int("segment_count").Default(0).Comment("会话段数量"),
		field.Int("participant_count").Default(0).Comment("参与者数量"),
		field.Time("generated_at").Comment("摘要生成时间"),
	}
}

// Indexes of the Summary.
func (Summary) Indexes() []ent.Index {
	return []ent.Index{
		// 唯一索引：同一群聊同一区间只保留一条摘要
		index.Fields("chat_id", "start_time", "end_time").Unique(),
	}
}
