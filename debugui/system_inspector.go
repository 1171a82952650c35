package debugui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/game"
)

var durationType = reflect.TypeFor[time.Duration]()

// SystemInspector lists the scheduler's systems and lets their exported
// fields be edited in place, e.g. to rewind a gravity timer.
type SystemInspector struct{}

func NewSystemInspector() *SystemInspector {
	return &SystemInspector{}
}

func (si *SystemInspector) Render(scheduler *game.Scheduler) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 280), imgui.CondOnce)

	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for i, sys := range scheduler.Systems() {
		val, ok := settable(sys)
		if !ok {
			imgui.BulletText(fmt.Sprintf("%T", sys))
			continue
		}

		if imgui.TreeNodeStr(fmt.Sprintf("%s##%d", val.Type().Name(), i)) {
			for _, field := range globalFieldCache.Fields(val.Type()) {
				fieldVal := val.Field(field.Index)
				if field.IsPointer {
					if fieldVal.IsNil() {
						imgui.Text(fmt.Sprintf("%s: nil", field.Name))
						continue
					}
					fieldVal = fieldVal.Elem()
				}
				renderField(fmt.Sprintf("%s##%d", field.Name, i), field.Name, fieldVal)
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

func renderField(id, name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	if val.Type() == durationType {
		imgui.Text(fmt.Sprintf("%s: %s", name, time.Duration(val.Int())))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt("##"+id, &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt("##"+id, &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat("##"+id, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name+"##"+id, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name + "##" + id) {
			for _, nf := range globalFieldCache.Fields(val.Type()) {
				nested := val.Field(nf.Index)
				if nf.IsPointer && !nested.IsNil() {
					nested = nested.Elem()
				}
				renderField(id+"."+nf.Name, nf.Name, nested)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		}
	}
}
