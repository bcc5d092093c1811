package programs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/esobox/api"
	"github.com/sarchlab/esobox/config"
	"github.com/sarchlab/esobox/core"
	"github.com/sarchlab/esobox/verify"
)

func load(name string) string {
	source, err := os.ReadFile(filepath.Join("testdata", name))
	Expect(err).NotTo(HaveOccurred())
	return string(source)
}

func runDriver(lang, source, input string) (string, api.Result, error) {
	profile, err := config.NewRegistry().Lookup(lang)
	Expect(err).NotTo(HaveOccurred())

	out := new(bytes.Buffer)
	driver := api.MakeDriverBuilder().
		WithTape(profile.Tape).
		Build("Driver")

	if err := driver.Load(source, strings.NewReader(input), out); err != nil {
		return "", api.Result{}, err
	}

	res, err := driver.Run()
	return out.String(), res, err
}

var _ = Describe("Programs", func() {
	It("should print brainfuck on the ring tape", func() {
		out, res, err := runDriver(config.Brainfuck, load("print_bf.bf"), "")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("brainfuck"))
		Expect(res.Blocks).To(BeNumerically(">", 1))
	})

	It("should fail printing brainfuck on the classic tape", func() {
		source := load("print_bf.bf")

		prog, err := core.Compile(source)
		Expect(err).NotTo(HaveOccurred())
		Expect(verify.HasFatal(verify.RunLint(prog, core.ClassicTape))).To(BeFalse())

		out, _, err := runDriver(config.BrainfuckClassic, source, "")

		Expect(core.IsOutOfBounds(err)).To(BeTrue())
		Expect(out).To(BeEmpty())
	})

	DescribeTable("should print a square of asterisks",
		func(lang string) {
			out, _, err := runDriver(lang, load("asterisks.bf"), "")

			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(strings.Repeat("**********\n", 10)))
		},
		Entry("ring tape", config.Brainfuck),
		Entry("classic tape", config.BrainfuckClassic),
	)

	DescribeTable("should print middle names",
		func(input, expected string) {
			out, _, err := runDriver("bf", load("middle_name.bf"), input)

			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(expected))
		},
		Entry(nil, "Samantha Vee Hills", "Vee"),
		Entry(nil, "Bob Dillinger", ""),
		Entry(nil, "John Jacob Jingleheimer Schmidt", "Jacob Jingleheimer"),
		Entry(nil, "Jose Mario Carasco-Williams", "Mario"),
		Entry(nil, "James Alfred Van Allen", "Alfred Van"),
	)

	It("should echo input up to a zero byte", func() {
		out, _, err := runDriver("bf", load("echo.bf"), "hello, world\x00ignored")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("hello, world"))
	})

	It("should agree with core.Run", func() {
		for _, name := range []string{"print_bf.bf", "asterisks.bf"} {
			source := load(name)
			want := new(bytes.Buffer)
			Expect(core.Run(source, nil, want, core.RingTape)).To(Succeed())

			got, _, err := runDriver(config.Brainfuck, source, "")

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want.String()), name)
		}
	})
})
