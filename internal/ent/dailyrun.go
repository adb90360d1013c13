// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/chat-digest-bot/internal/ent/dailyrun"
)

// DailyRun is the model entity for the DailyRun schema.
type DailyRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 日期范围开始时间
	StartTime time.Time `json:"start_time,omitempty"`
	// 日期范围结束时间
	EndTime time.Time `json:"end_time,omitempty"`
	// 运行状态：pending=待执行, in_progress=执行中, completed=已完成, failed=失败
	Status dailyrun.Status `json:"status,omitempty"`
	// 错误信息
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailyrun.FieldID:
			values[i] = new(sql.NullInt64)
		case dailyrun.FieldStatus, dailyrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case dailyrun.FieldCreateTime, dailyrun.FieldUpdateTime, dailyrun.FieldStartTime, dailyrun.FieldEndTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyRun fields.
func (dr *DailyRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailyrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			dr.ID = int(value.Int64)
		case dailyrun.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				dr.CreateTime = value.Time
			}
		case dailyrun.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				dr.UpdateTime = value.Time
			}
		case dailyrun.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				dr.StartTime = value.Time
			}
		case dailyrun.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				dr.EndTime = value.Time
			}
		case dailyrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				dr.Status = dailyrun.Status(value.String)
			}
		case dailyrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				dr.ErrorMessage = value.String
			}
		default:
			dr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyRun.
// This includes values selected through modifiers, order, etc.
func (dr *DailyRun) Value(name string) (ent.Value, error) {
	return dr.selectValues.Get(name)
}

// Update returns a builder for updating this DailyRun.
// Note that you need to call DailyRun.Unwrap() before calling this method if this DailyRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (dr *DailyRun) Update() *DailyRunUpdateOne {
	return NewDailyRunClient(dr.config).UpdateOne(dr)
}

// Unwrap unwraps the DailyRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (dr *DailyRun) Unwrap() *DailyRun {
	_tx, ok := dr.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyRun is not a transactional entity")
	}
	dr.config.driver = _tx.drv
	return dr
}

// String implements the fmt.Stringer.
func (dr *DailyRun) String() string {
	var builder strings.Builder
	builder.WriteString("DailyRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", dr.ID))
	builder.WriteString("create_time=")
	builder.WriteString(dr.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(dr.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(dr.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(dr.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", dr.Status))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(dr.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// DailyRuns is a parsable slice of DailyRun.
type DailyRuns []*DailyRun
