//go:generate go run go.uber.org/mock/mockgen -package mock -destination mock/mock.go github.com/menubar-go/menubar-go/src/pkg/notice Presenter

// Package notice 向用户展示的提示信息
package notice

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Notice 一条需要用户知晓的提示，不代表失败
type Notice struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (n Notice) String() string {
	if n.Body == "" {
		return n.Title
	}
	return n.Title + " " + n.Body
}

// Presenter 负责把提示展示给用户
type Presenter interface {
	Present(n Notice)
}

// PresenterFunc 函数形式的 Presenter
type PresenterFunc func(n Notice)

func (f PresenterFunc) Present(n Notice) { f(n) }

// LogPresenter 将提示写入日志
type LogPresenter struct {
	logger *logrus.Entry
}

func NewLogPresenter(logger *logrus.Logger) *LogPresenter {
	return &LogPresenter{logger: logger.WithField("component", "notice")}
}

func (p *LogPresenter) Present(n Notice) {
	p.logger.WithField("title", n.Title).Warn(n.Body)
}

// WriterPresenter 将提示写到终端等输出
type WriterPresenter struct {
	w io.Writer
}

func NewWriterPresenter(w io.Writer) *WriterPresenter {
	return &WriterPresenter{w: w}
}

func (p *WriterPresenter) Present(n Notice) {
	fmt.Fprintf(p.w, "%s\n%s\n", n.Title, n.Body)
}

// Multi 依次交给多个 Presenter 展示
func Multi(presenters ...Presenter) Presenter {
	return PresenterFunc(func(n Notice) {
		for _, p := range presenters {
			p.Present(n)
		}
	})
}
