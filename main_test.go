package main_test

import (
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Main", func() {
	var (
		cmdArgs []string
		session *gexec.Session
	)

	BeforeEach(func() {
		cmdArgs = []string{}
	})

	JustBeforeEach(func() {
		cmd := exec.Command(cliPath, cmdArgs...)

		var err error
		session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
	})

	passwordFor := func(line string) string {
		matches := regexp.MustCompile(`Password \d+: (\S+)`).FindStringSubmatch(line)
		ExpectWithOffset(1, matches).To(HaveLen(2))
		return matches[1]
	}

	Describe("generating passwords", func() {
		It("prints a single password with its strength by default", func() {
			Eventually(session).Should(gexec.Exit(0))
			Eventually(session.Out).Should(gbytes.Say(`Password 1: \S{12}`))
			Eventually(session.Out).Should(gbytes.Say(`Strength: .*\(\d+/100\)`))
		})

		Context("with a count", func() {
			BeforeEach(func() {
				cmdArgs = []string{"-c", "3"}
			})

			It("prints one line per password and no strength line", func() {
				Eventually(session).Should(gexec.Exit(0))
				Eventually(session.Out).Should(gbytes.Say("Password 1: "))
				Eventually(session.Out).Should(gbytes.Say("Password 2: "))
				Eventually(session.Out).Should(gbytes.Say("Password 3: "))
				Expect(string(session.Out.Contents())).NotTo(ContainSubstring("Strength:"))
			})
		})

		Context("with a length", func() {
			BeforeEach(func() {
				cmdArgs = []string{"-l", "20", "-c", "2"}
			})

			It("prints passwords of that length", func() {
				Eventually(session).Should(gexec.Exit(0))

				for _, line := range outputLines(session) {
					Expect(passwordFor(line)).To(HaveLen(20))
				}
			})
		})

		Context("when excluding ambiguous characters", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--exclude-ambiguous", "-c", "5"}
			})

			It("never prints ambiguous characters", func() {
				Eventually(session).Should(gexec.Exit(0))

				for _, line := range outputLines(session) {
					Expect(passwordFor(line)).NotTo(MatchRegexp(`[il1Lo0O]`))
				}
			})
		})

		Context("when the length is too short", func() {
			BeforeEach(func() {
				cmdArgs = []string{"-l", "2"}
			})

			It("exits 1 with a message on stderr", func() {
				Eventually(session).Should(gexec.Exit(1))
				Eventually(session.Err).Should(gbytes.Say("Error: "))
				Eventually(session.Err).Should(gbytes.Say("at least 4"))
			})
		})

		Context("when every class is excluded", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--no-lowercase", "--no-uppercase", "--no-digits", "--no-symbols"}
			})

			It("exits 1 with a message on stderr", func() {
				Eventually(session).Should(gexec.Exit(1))
				Eventually(session.Err).Should(gbytes.Say("at least one character type"))
			})
		})

		Context("with a defaults file", func() {
			var defaultsDir string

			BeforeEach(func() {
				var err error
				defaultsDir, err = ioutil.TempDir("", "passgen-main")
				Expect(err).NotTo(HaveOccurred())

				defaultsPath := filepath.Join(defaultsDir, "defaults.yml")
				Expect(ioutil.WriteFile(defaultsPath, []byte("length: 24\n"), 0600)).To(Succeed())

				cmdArgs = []string{"--defaults-file", defaultsPath}
			})

			AfterEach(func() {
				Expect(os.RemoveAll(defaultsDir)).To(Succeed())
			})

			It("uses the file's length", func() {
				Eventually(session).Should(gexec.Exit(0))
				Eventually(session.Out).Should(gbytes.Say(`Password 1: \S{24}`))
			})

			Context("and an explicit length flag", func() {
				BeforeEach(func() {
					cmdArgs = append(cmdArgs, "-l", "8")
				})

				It("prefers the flag", func() {
					Eventually(session).Should(gexec.Exit(0))
					Eventually(session.Out).Should(gbytes.Say(`Password 1: \S{8}\n`))
				})
			})
		})
	})

	Describe("generating passphrases", func() {
		BeforeEach(func() {
			cmdArgs = []string{"-p"}
		})

		It("prints a passphrase of four words and a trailing number", func() {
			Eventually(session).Should(gexec.Exit(0))
			Eventually(session.Out).Should(gbytes.Say("Passphrase 1: "))

			segments := phraseSegments(session, "-")
			Expect(segments).To(HaveLen(5))

			n, err := strconv.Atoi(segments[4])
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeNumerically("<", 1000))
		})

		Context("with a word count", func() {
			BeforeEach(func() {
				cmdArgs = []string{"-p", "-w", "6"}
			})

			It("prints that many words", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(phraseSegments(session, "-")).To(HaveLen(7))
			})
		})

		Context("with a separator", func() {
			BeforeEach(func() {
				cmdArgs = []string{"-p", "--separator", "."}
			})

			It("joins the words with it", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(phraseSegments(session, ".")).To(HaveLen(5))
			})
		})
	})

	Describe("analyzing passwords", func() {
		BeforeEach(func() {
			cmdArgs = []string{"-a", "Ab3!Fg7&Kp9Q"}
		})

		It("prints the analysis block with a masked password", func() {
			Eventually(session).Should(gexec.Exit(0))
			Eventually(session.Out).Should(gbytes.Say(`Password Analysis for: \*{12}`))
			Eventually(session.Out).Should(gbytes.Say("Length: 12"))
			Eventually(session.Out).Should(gbytes.Say("Very Strong"))
			Eventually(session.Out).Should(gbytes.Say("Score: 105/100"))
		})

		Context("for a weak password", func() {
			BeforeEach(func() {
				cmdArgs = []string{"-a", "aaaa1111"}
			})

			It("prints suggestions and the class checklist", func() {
				Eventually(session).Should(gexec.Exit(0))
				Eventually(session.Out).Should(gbytes.Say("Score: 55/100"))
				Eventually(session.Out).Should(gbytes.Say("Suggestions for improvement:"))
				Eventually(session.Out).Should(gbytes.Say("Avoid repeating characters"))
				Eventually(session.Out).Should(gbytes.Say("Character types present:"))
				Eventually(session.Out).Should(gbytes.Say("Lowercase: "))
			})
		})
	})

	Describe("unrecognized arguments", func() {
		BeforeEach(func() {
			cmdArgs = []string{"analyze", "foo"}
		})

		It("exits 1 without generating anything", func() {
			Eventually(session).Should(gexec.Exit(1))
			Eventually(session.Err).Should(gbytes.Say("Error: unrecognized arguments: analyze foo"))
			Expect(string(session.Out.Contents())).NotTo(ContainSubstring("Password 1:"))
		})
	})

	Describe("version", func() {
		BeforeEach(func() {
			cmdArgs = []string{"--version"}
		})

		It("prints the version", func() {
			Eventually(session).Should(gexec.Exit(0))
			Eventually(session.Out).Should(gbytes.Say("passgen version"))
		})
	})
})

func outputLines(session *gexec.Session) []string {
	Eventually(session).Should(gexec.Exit())

	var lines []string
	for _, line := range strings.Split(string(session.Out.Contents()), "\n") {
		if strings.HasPrefix(line, "Password ") {
			lines = append(lines, line)
		}
	}

	Expect(lines).NotTo(BeEmpty())
	return lines
}

func phraseSegments(session *gexec.Session, separator string) []string {
	Eventually(session).Should(gexec.Exit())

	out := string(session.Out.Contents())
	matches := regexp.MustCompile(`Passphrase \d+: (\S+)`).FindStringSubmatch(out)
	Expect(matches).To(HaveLen(2))

	return strings.Split(matches[1], separator)
}
